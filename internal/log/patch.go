// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

// Patch patches the existing settings with any option given.
// This is thread safe and propagates to all child loggers.
func (l *Logger) Patch(options ...Option) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.patchWithoutLocking(options...)
}

func (l *Logger) patchWithoutLocking(options ...Option) {
	patched := newSettings(options)
	patched.mergeWith(l.settings)
	patched.setDefaults()
	l.settings = patched
	l.build()

	for _, child := range l.childs {
		child.patchWithoutLocking(options...)
	}
}

// PatchLevel changes the level of the logger and of all its
// child loggers. It does not rebuild the underlying encoders.
func (l *Logger) PatchLevel(level Level) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.patchLevelWithoutLocking(level)
}

func (l *Logger) patchLevelWithoutLocking(level Level) {
	l.settings.level = &level
	l.level.SetLevel(level.zapLevel())
	for _, child := range l.childs {
		child.patchLevelWithoutLocking(level)
	}
}
