// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package rpc

import (
	"net/http"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gorilla/rpc/v2"
	"github.com/gorilla/rpc/v2/json2"
)

// DotUpCodec is a JSON-RPC 2.0 codec accepting substrate style
// method names such as paras_currentCode.
type DotUpCodec struct{}

// NewDotUpCodec creates a new DotUpCodec.
func NewDotUpCodec() *DotUpCodec {
	return &DotUpCodec{}
}

// NewRequest wraps the json2 codec request of r.
func (c *DotUpCodec) NewRequest(r *http.Request) rpc.CodecRequest {
	// json2.Codec always returns a *json2.CodecRequest
	innerCR := json2.NewCodec().NewRequest(r).(*json2.CodecRequest)
	return &DotUpCodecRequest{CodecRequest: innerCR}
}

// DotUpCodecRequest is a json2 codec request with its method
// name translated to the gorilla service method form.
type DotUpCodecRequest struct {
	*json2.CodecRequest
}

// Method returns the decoded method as a string of the form "Service.Method"
// for methods received as "service_method".
func (c *DotUpCodecRequest) Method() (string, error) {
	m, err := c.CodecRequest.Method()
	if err != nil {
		return "", err
	}

	service, method, found := strings.Cut(m, "_")
	if !found || method == "" {
		return m, nil
	}

	r, n := utf8.DecodeRuneInString(method)
	if !unicode.IsLower(r) {
		return m, nil
	}

	return service + "." + string(unicode.ToUpper(r)) + method[n:], nil
}
