// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package service exposes a charset.Manager over JSON-RPC 2.0.
package service

import (
	"net/http"
	"unicode/utf8"

	"github.com/golang/glog"
	"github.com/gorilla/rpc/v2"
	"github.com/gorilla/rpc/v2/json2"

	"github.com/luxfi/charset"
)

// Name is the JSON-RPC service name, so methods are called "charset.Decode".
const Name = "charset"

// Service answers encode and decode requests.
type Service struct {
	manager charset.Manager
}

// New returns a service backed by m.
func New(m charset.Manager) *Service {
	return &Service{manager: m}
}

// NewHandler returns an http.Handler serving s as JSON-RPC 2.0.
func NewHandler(s *Service) (http.Handler, error) {
	server := rpc.NewServer()
	server.RegisterCodec(json2.NewCodec(), "application/json")
	if err := server.RegisterService(s, Name); err != nil {
		return nil, err
	}
	return server, nil
}

// EncodingInfo is the metadata of one character set.
type EncodingInfo struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	WebName         string `json:"webName,omitempty"`
	CodePage        int    `json:"codePage"`
	WindowsCodePage int    `json:"windowsCodePage"`
	ReadOnly        bool   `json:"readOnly"`
	SingleByte      bool   `json:"singleByte"`
}

// EncodingsArgs is empty.
type EncodingsArgs struct{}

// EncodingsReply lists the registered character sets.
type EncodingsReply struct {
	Encodings []EncodingInfo `json:"encodings"`
}

// Encodings lists every registered character set.
func (s *Service) Encodings(_ *http.Request, _ *EncodingsArgs, reply *EncodingsReply) error {
	for _, name := range s.manager.Names() {
		c, err := s.manager.Get(name)
		if err != nil {
			return err
		}
		t := c.Table()
		info := t.Info()
		reply.Encodings = append(reply.Encodings, EncodingInfo{
			Name:            info.Name,
			Description:     info.Description,
			WebName:         info.WebName,
			CodePage:        info.CodePage,
			WindowsCodePage: info.WindowsCodePage,
			ReadOnly:        info.ReadOnly,
			SingleByte:      t.SingleByte(),
		})
	}
	return nil
}

// DecodeArgs selects the bytes to decode. Data is base64 in JSON. A nil
// Length means everything from Offset to the end.
type DecodeArgs struct {
	Encoding string `json:"encoding"`
	Data     []byte `json:"data"`
	Offset   int    `json:"offset"`
	Length   *int   `json:"length,omitempty"`
}

// DecodeReply holds the decoded text.
type DecodeReply struct {
	Text string `json:"text"`
}

// Decode converts legacy bytes to text.
func (s *Service) Decode(_ *http.Request, args *DecodeArgs, reply *DecodeReply) error {
	glog.V(2).Infof("service: decode %d bytes with %s", len(args.Data), args.Encoding)

	c, err := s.manager.Get(args.Encoding)
	if err != nil {
		return err
	}
	length := len(args.Data) - args.Offset
	if args.Length != nil {
		length = *args.Length
	}
	runes, err := c.Decode(args.Data, args.Offset, length)
	if err != nil {
		return err
	}
	reply.Text = string(runes)
	return nil
}

// EncodeArgs holds the text to encode.
type EncodeArgs struct {
	Encoding string `json:"encoding"`
	Text     string `json:"text"`
}

// EncodeReply holds the encoded bytes. Substituted counts the runes that
// had no mapping and were written as '?'.
type EncodeReply struct {
	Data        []byte `json:"data"`
	ReadOnly    bool   `json:"readOnly"`
	Substituted int    `json:"substituted"`
}

// Encode converts text to legacy bytes.
func (s *Service) Encode(_ *http.Request, args *EncodeArgs, reply *EncodeReply) error {
	glog.V(2).Infof("service: encode %d runes with %s", utf8.RuneCountInString(args.Text), args.Encoding)

	c, err := s.manager.Get(args.Encoding)
	if err != nil {
		return err
	}
	runes := []rune(args.Text)
	for _, r := range runes {
		if _, ok := c.Lookup(r); !ok {
			reply.Substituted++
		}
	}
	reply.Data = c.EncodeAll(runes)
	reply.ReadOnly = c.Table().ReadOnly()
	return nil
}
