// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package command

import (
	"net/http"
	"time"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/luxfi/charset/codepage"
	"github.com/luxfi/charset/service"
)

var Serve = &cobra.Command{
	Use:   "serve",
	Short: "Serve encode and decode requests over JSON-RPC 2.0.",
	Long: "Serve encode and decode requests over JSON-RPC 2.0 at /rpc.\n\n" +
		"Methods: charset.Encodings, charset.Decode, charset.Encode.",
	Args: cobra.NoArgs,
	RunE: commandServe,
}

func init() {
	Serve.Flags().String(listenKey, "localhost:9650", "Address to listen on.")
	if err := config.BindPFlag(listenKey, Serve.Flags().Lookup(listenKey)); err != nil {
		panic(err)
	}
}

func newMux() (*http.ServeMux, error) {
	handler, err := service.NewHandler(service.New(codepage.Default))
	if err != nil {
		return nil, errors.Wrap(err, "registering service")
	}
	mux := http.NewServeMux()
	mux.Handle("/rpc", handler)
	return mux, nil
}

func commandServe(cmd *cobra.Command, args []string) error {
	mux, err := newMux()
	if err != nil {
		return err
	}
	server := &http.Server{
		Addr:              config.GetString(listenKey),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	glog.Infof("charconv: serving %v on %s", codepage.Default.Names(), server.Addr)
	return server.ListenAndServe()
}
