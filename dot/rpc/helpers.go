// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package rpc

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/ChainSafe/paras/dot/rpc/modules"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/rpc/v2"
	"github.com/jpillora/ipfilter"
)

var (
	errParseIP                = errors.New("unable to parse IP")
	errExternalRequestRefused = errors.New("external HTTP request refused")
	errUnsafeMethod           = errors.New("unsafe rpc method cannot be reached")
	errInvalidMethodFormat    = errors.New("invalid rpc method format")
)

// LocalhostFilter creates a ipfilter object for localhost
func LocalhostFilter() *ipfilter.IPFilter {
	return ipfilter.New(ipfilter.Options{
		BlockByDefault: true,
		AllowedIPs:     []string{"127.0.0.1", "::1"},
	})
}

// LocalRequestOnly HTTP handler to restrict to only local connections
func LocalRequestOnly(r *rpc.RequestInfo, _ interface{}) error {
	ip, _, err := net.SplitHostPort(r.Request.RemoteAddr)
	if err != nil {
		return fmt.Errorf("%w: %s", errParseIP, r.Request.RemoteAddr)
	}

	if LocalhostFilter().Allowed(ip) {
		return nil
	}
	return errExternalRequestRefused
}

func snakeCaseFormat(method string) (string, error) {
	service, funcName, found := strings.Cut(method, ".")
	if !found || funcName == "" {
		return "", fmt.Errorf("%w: %s, should be 'module.FunctionName'", errInvalidMethodFormat, method)
	}

	funcName = strings.ToLower(string(funcName[0])) + funcName[1:]
	return service + "_" + funcName, nil
}

func rpcValidator(cfg *HTTPServerConfig, validate *validator.Validate) func(r *rpc.RequestInfo, i interface{}) error {
	return func(r *rpc.RequestInfo, v interface{}) error {
		rpcmethod, err := snakeCaseFormat(r.Method)
		if err != nil {
			return err
		}

		isUnsafe := modules.IsUnsafe(rpcmethod)
		if isUnsafe && !cfg.rpcUnsafeEnabled() {
			return fmt.Errorf("%w: %s", errUnsafeMethod, rpcmethod)
		}

		err = validate.Struct(v)
		if err != nil {
			return err
		}

		if !cfg.exposeRPC() || isUnsafe && !cfg.RPCUnsafeExternal {
			return LocalRequestOnly(r, v)
		}

		return nil
	}
}

func isLocalhost(remoteAddr string) bool {
	ip, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return false
	}
	return LocalhostFilter().Allowed(ip)
}
