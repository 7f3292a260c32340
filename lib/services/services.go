// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package services

import (
	"errors"
	"fmt"
	"reflect"
)

// Service must be implemented by all the node services.
type Service interface {
	Start() error
	Stop() error
}

// ServiceRegistry starts and stops the node services in registration order.
type ServiceRegistry struct {
	services     map[reflect.Type]Service
	serviceTypes []reflect.Type
	logger       Logger
}

// NewServiceRegistry creates an empty registry
func NewServiceRegistry(logger Logger) *ServiceRegistry {
	return &ServiceRegistry{
		services: make(map[reflect.Type]Service),
		logger:   logger,
	}
}

// RegisterService stores a new service in the registry.
// Registering a second service of the same type is ignored.
func (s *ServiceRegistry) RegisterService(service Service) {
	kind := reflect.TypeOf(service)
	if _, exists := s.services[kind]; exists {
		s.logger.Warnf("Tried to add service type %s that has already been seen", kind)
		return
	}
	s.services[kind] = service
	s.serviceTypes = append(s.serviceTypes, kind)
}

// StartAll starts the registered services in registration order.
// If a service fails to start, the services already started are
// stopped in reverse order and the start error is returned.
func (s *ServiceRegistry) StartAll() error {
	s.logger.Infof("Starting services: %v", s.serviceTypes)
	for i, typ := range s.serviceTypes {
		s.logger.Debugf("Starting service %s", typ)
		err := s.services[typ].Start()
		if err == nil {
			continue
		}

		for j := i - 1; j >= 0; j-- {
			stopErr := s.services[s.serviceTypes[j]].Stop()
			if stopErr != nil {
				s.logger.Errorf("Error stopping service %s: %s", s.serviceTypes[j], stopErr)
			}
		}
		return fmt.Errorf("starting service %s: %w", typ, err)
	}
	s.logger.Debug("All services started.")
	return nil
}

// StopAll stops all the registered services in registration order,
// and returns the errors encountered joined together.
func (s *ServiceRegistry) StopAll() error {
	s.logger.Infof("Stopping services: %v", s.serviceTypes)
	var errs []error
	for _, typ := range s.serviceTypes {
		s.logger.Debugf("Stopping service %s", typ)
		err := s.services[typ].Stop()
		if err != nil {
			s.logger.Errorf("Error stopping service %s: %s", typ, err)
			errs = append(errs, fmt.Errorf("stopping service %s: %w", typ, err))
		}
	}
	s.logger.Debug("All services stopped.")
	return errors.Join(errs...)
}

// Get retrieves the registered service of the same type as srvc.
func (s *ServiceRegistry) Get(srvc interface{}) Service {
	if reflect.TypeOf(srvc).Kind() != reflect.Ptr {
		s.logger.Warnf("expected a pointer but got %T", srvc)
		return nil
	}

	if service, ok := s.services[reflect.TypeOf(srvc)]; ok {
		return service
	}
	s.logger.Warnf("unknown service type %T", srvc)
	return nil
}
