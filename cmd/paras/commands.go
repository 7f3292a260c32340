// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/ChainSafe/paras/dot"
	"github.com/ChainSafe/paras/dot/parachain/paras"
	parachaintypes "github.com/ChainSafe/paras/dot/parachain/types"
	"github.com/urfave/cli"
)

var (
	errParaRequired   = errors.New("--para is required")
	errCodeRequired   = errors.New("--code or --code-file is required")
	errHeadRequired   = errors.New("--head is required")
	errActionRequired = errors.New("--action is required")
	errCountTooLarge  = errors.New("--count does not fit in a block number")
)

// parasAction is the root action for the paras command, creates a node
// configuration, initialises the node if it is not yet initialised,
// creates a new node and starts its services.
func parasAction(ctx *cli.Context) error {
	if arguments := ctx.Args(); len(arguments) > 0 {
		return fmt.Errorf("failed to read command argument: %q", arguments[0])
	}

	cfg, err := createDotConfig(ctx)
	if err != nil {
		return fmt.Errorf("failed to create node configuration: %w", err)
	}

	if !dot.NodeInitialized(cfg.Global.BasePath) {
		logger.Info("node has not been initialised, initialising new node...")

		err = dot.InitNode(cfg)
		if err != nil {
			return fmt.Errorf("failed to initialise node: %w", err)
		}
	}

	node, err := dot.NewNode(cfg)
	if err != nil {
		return fmt.Errorf("failed to create node services: %w", err)
	}

	logger.Info("starting node " + node.Name + "...")

	return node.Start()
}

// initAction is the action for the "init" subcommand, initialises the node
// databases with the genesis paras of the configuration.
func initAction(ctx *cli.Context) error {
	cfg, err := createDotConfig(ctx)
	if err != nil {
		return fmt.Errorf("failed to create node configuration: %w", err)
	}

	if ctx.Bool(ForceFlag.Name) && dot.NodeInitialized(cfg.Global.BasePath) {
		dbPath := filepath.Join(cfg.Global.BasePath, "db")
		logger.Warnf("deleting the existing node database at %s", dbPath)
		err = os.RemoveAll(dbPath)
		if err != nil {
			return fmt.Errorf("failed to delete node database: %w", err)
		}
	}

	return dot.InitNode(cfg)
}

// withNode runs the operation against the node state without starting the
// node services, and prints the events the operation deposited.
func withNode(ctx *cli.Context, operation func(node *dot.Node) error) (err error) {
	cfg, err := createDotConfig(ctx)
	if err != nil {
		return fmt.Errorf("failed to create node configuration: %w", err)
	}

	cfg.RPC = dot.RPCConfig{}
	cfg.Global.PublishMetrics = false

	node, err := dot.NewNode(cfg)
	if err != nil {
		return fmt.Errorf("failed to open node: %w", err)
	}

	defer func() {
		stopErr := node.Stop()
		if err == nil && stopErr != nil {
			err = fmt.Errorf("failed to stop node: %w", stopErr)
		}
	}()

	err = operation(node)
	if err != nil {
		return err
	}

	for _, record := range node.State.Events.Records() {
		_, err = fmt.Fprintf(ctx.App.Writer, "block %d: %s\n", record.Block, record.Event)
		if err != nil {
			return err
		}
	}
	return nil
}

func paraFromFlags(ctx *cli.Context) (parachaintypes.ParaID, error) {
	if !ctx.IsSet(ParaFlag.Name) {
		return 0, errParaRequired
	}

	para := ctx.Uint(ParaFlag.Name)
	if uint64(para) > math.MaxUint32 {
		return 0, fmt.Errorf("para id %d does not fit in 32 bits", para)
	}
	return parachaintypes.ParaID(para), nil
}

func codeFromFlags(ctx *cli.Context) (code parachaintypes.ValidationCode, err error) {
	if fp := ctx.String(CodeFileFlag.Name); fp != "" {
		code, err = os.ReadFile(filepath.Clean(fp))
		if err != nil {
			return nil, fmt.Errorf("failed to read code file: %w", err)
		}
		return code, nil
	}

	encoded := ctx.String(CodeFlag.Name)
	if encoded == "" {
		return nil, errCodeRequired
	}

	err = code.UnmarshalText([]byte(encoded))
	if err != nil {
		return nil, fmt.Errorf("invalid code: %w", err)
	}
	return code, nil
}

func headFromFlags(ctx *cli.Context) (head parachaintypes.HeadData, err error) {
	encoded := ctx.String(HeadFlag.Name)
	if encoded == "" {
		return nil, errHeadRequired
	}

	err = head.UnmarshalText([]byte(encoded))
	if err != nil {
		return nil, fmt.Errorf("invalid head: %w", err)
	}
	return head, nil
}

// setCodeAction is the action for the "set-code" subcommand
func setCodeAction(ctx *cli.Context) error {
	para, err := paraFromFlags(ctx)
	if err != nil {
		return err
	}

	code, err := codeFromFlags(ctx)
	if err != nil {
		return err
	}

	return withNode(ctx, func(node *dot.Node) error {
		return node.Initializer.ForceSetCurrentCode(para, code)
	})
}

// setHeadAction is the action for the "set-head" subcommand
func setHeadAction(ctx *cli.Context) error {
	para, err := paraFromFlags(ctx)
	if err != nil {
		return err
	}

	head, err := headFromFlags(ctx)
	if err != nil {
		return err
	}

	return withNode(ctx, func(node *dot.Node) error {
		return node.Initializer.ForceSetCurrentHead(para, head)
	})
}

// scheduleUpgradeAction is the action for the "schedule-upgrade" subcommand
func scheduleUpgradeAction(ctx *cli.Context) error {
	para, err := paraFromFlags(ctx)
	if err != nil {
		return err
	}

	code, err := codeFromFlags(ctx)
	if err != nil {
		return err
	}

	block := ctx.Uint(BlockFlag.Name)
	if uint64(block) > math.MaxUint32 {
		return fmt.Errorf("activation block %d does not fit in a block number", block)
	}

	return withNode(ctx, func(node *dot.Node) error {
		activationBlock := parachaintypes.BlockNumber(block)
		if activationBlock == 0 {
			activationBlock, err = node.Initializer.ScheduleCodeUpgradeWithDelay(para, code)
		} else {
			err = node.Initializer.ForceScheduleCodeUpgrade(para, code, activationBlock)
		}
		if err != nil {
			return err
		}

		logger.Infof("code upgrade of para %d scheduled at block %d", para, activationBlock)
		return nil
	})
}

// noteHeadAction is the action for the "note-head" subcommand
func noteHeadAction(ctx *cli.Context) error {
	para, err := paraFromFlags(ctx)
	if err != nil {
		return err
	}

	head, err := headFromFlags(ctx)
	if err != nil {
		return err
	}

	return withNode(ctx, func(node *dot.Node) error {
		return node.Initializer.ForceNoteNewHead(para, head)
	})
}

// queueActionAction is the action for the "queue-action" subcommand
func queueActionAction(ctx *cli.Context) error {
	para, err := paraFromFlags(ctx)
	if err != nil {
		return err
	}

	name := ctx.String(ActionFlag.Name)
	if name == "" {
		return errActionRequired
	}

	action, err := parachaintypes.ParseParaAction(name)
	if err != nil {
		return err
	}

	return withNode(ctx, func(node *dot.Node) error {
		return node.Initializer.ForceQueueAction(para, action)
	})
}

// advanceAction is the action for the "advance" subcommand
func advanceAction(ctx *cli.Context) error {
	count := ctx.Uint(CountFlag.Name)
	if uint64(count) > math.MaxUint32 {
		return fmt.Errorf("%w: %d", errCountTooLarge, count)
	}

	return withNode(ctx, func(node *dot.Node) error {
		block, err := node.Initializer.AdvanceBlocks(uint32(count))
		if err != nil {
			return err
		}

		logger.Infof("advanced to block %d in session %d", block, node.Initializer.SessionIndex())
		return nil
	})
}

// newSessionAction is the action for the "new-session" subcommand
func newSessionAction(ctx *cli.Context) error {
	return withNode(ctx, func(node *dot.Node) error {
		session, err := node.Initializer.NewSession()
		if err != nil {
			return err
		}

		logger.Infof("started session %d", session)
		return nil
	})
}

// chainSummary is the chain state printed by the "show" subcommand.
type chainSummary struct {
	BlockNumber     parachaintypes.BlockNumber  `json:"blockNumber"`
	SessionIndex    parachaintypes.SessionIndex `json:"sessionIndex"`
	Parachains      []parachaintypes.ParaID     `json:"parachains"`
	PastCodePruning []pruningSummary            `json:"pastCodePruning"`
	NextActions     []actionSummary             `json:"nextActions"`
}

type pruningSummary struct {
	Para          parachaintypes.ParaID      `json:"para"`
	EligibleBlock parachaintypes.BlockNumber `json:"eligibleBlock"`
}

type actionSummary struct {
	Para   parachaintypes.ParaID     `json:"para"`
	Action parachaintypes.ParaAction `json:"action"`
}

// paraSummary is the para state printed by the "show" subcommand.
type paraSummary struct {
	Para             parachaintypes.ParaID              `json:"para"`
	CodeHash         *parachaintypes.ValidationCodeHash `json:"codeHash"`
	CodeSize         int                                `json:"codeSize"`
	DecompressedSize int                                `json:"decompressedSize"`
	Head             parachaintypes.HeadData            `json:"head"`
	Upgrade          *upgradeSummary                    `json:"upgrade"`
	PastCode         []pastCodeSummary                  `json:"pastCode"`
}

type upgradeSummary struct {
	CodeHash        parachaintypes.ValidationCodeHash `json:"codeHash"`
	ActivationBlock parachaintypes.BlockNumber        `json:"activationBlock"`
}

type pastCodeSummary struct {
	CodeHash      parachaintypes.ValidationCodeHash `json:"codeHash"`
	EligibleBlock parachaintypes.BlockNumber        `json:"eligibleBlock"`
}

// showAction is the action for the "show" subcommand
func showAction(ctx *cli.Context) error {
	return withNode(ctx, func(node *dot.Node) (err error) {
		var summary interface{}
		if ctx.IsSet(ParaFlag.Name) {
			para, err := paraFromFlags(ctx)
			if err != nil {
				return err
			}
			summary, err = newParaSummary(node, para)
			if err != nil {
				return err
			}
		} else {
			summary, err = newChainSummary(node)
			if err != nil {
				return err
			}
		}

		out, err := json.MarshalIndent(summary, "", "\t")
		if err != nil {
			return fmt.Errorf("failed to encode state: %w", err)
		}

		_, err = fmt.Fprintln(ctx.App.Writer, string(out))
		return err
	})
}

func newChainSummary(node *dot.Node) (summary chainSummary, err error) {
	summary.BlockNumber = node.Initializer.BlockNumber()
	summary.SessionIndex = node.Initializer.SessionIndex()

	summary.Parachains, err = node.Paras.Parachains()
	if err != nil {
		return summary, fmt.Errorf("loading parachains: %w", err)
	}

	pruning, err := node.Paras.PastCodePruning()
	if err != nil {
		return summary, fmt.Errorf("loading past code pruning queue: %w", err)
	}

	summary.PastCodePruning = make([]pruningSummary, len(pruning))
	for i, entry := range pruning {
		summary.PastCodePruning[i] = pruningSummary{Para: entry.Para, EligibleBlock: entry.EligibleBlock}
	}

	nextSession := summary.SessionIndex
	if nextSession < math.MaxUint32 {
		nextSession++
	}
	actions, err := node.Paras.ActionsQueue(nextSession)
	if err != nil {
		return summary, fmt.Errorf("loading actions queue: %w", err)
	}

	summary.NextActions = make([]actionSummary, len(actions))
	for i, queued := range actions {
		summary.NextActions[i] = actionSummary{Para: queued.Para, Action: queued.Action}
	}

	return summary, nil
}

func newParaSummary(node *dot.Node, para parachaintypes.ParaID) (summary paraSummary, err error) {
	summary.Para = para

	code, found, err := node.Paras.CurrentCode(para)
	if err != nil {
		return summary, fmt.Errorf("loading current code: %w", err)
	} else if found {
		hash := code.Hash()
		summary.CodeHash = &hash
		summary.CodeSize = len(code)

		decompressed, err := paras.DecompressCode(code, parachaintypes.ValidationCodeBombLimit)
		if err != nil {
			return summary, err
		}
		summary.DecompressedSize = len(decompressed)
	}

	summary.Head, _, err = node.Paras.CurrentHead(para)
	if err != nil {
		return summary, fmt.Errorf("loading current head: %w", err)
	}

	upgrade, found, err := node.Paras.FutureCodeUpgrade(para)
	if err != nil {
		return summary, fmt.Errorf("loading code upgrade: %w", err)
	} else if found {
		summary.Upgrade = &upgradeSummary{
			CodeHash:        upgrade.Code.Hash(),
			ActivationBlock: upgrade.ActivationBlock,
		}
	}

	pruning, err := node.Paras.PastCodePruning()
	if err != nil {
		return summary, fmt.Errorf("loading past code pruning queue: %w", err)
	}

	summary.PastCode = []pastCodeSummary{}
	for _, entry := range pruning {
		if entry.Para != para {
			continue
		}

		pastCodes, err := node.Paras.PastCode(para, entry.EligibleBlock)
		if err != nil {
			return summary, fmt.Errorf("loading past code: %w", err)
		}

		for _, pastCode := range pastCodes {
			summary.PastCode = append(summary.PastCode, pastCodeSummary{
				CodeHash:      pastCode.Hash(),
				EligibleBlock: entry.EligibleBlock,
			})
		}
	}

	return summary, nil
}
