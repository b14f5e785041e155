package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"github.com/adamwoolhether/podio/transport"
)

type callFlags struct {
	params      []string
	query       []string
	contentType string
	body        string
	url         string
	sel         string
}

func newCallCmd(a *app) *cobra.Command {
	var f callFlags

	cmd := &cobra.Command{
		Use:   "call [METHOD] segment...",
		Short: "Issue one API call and print the JSON result",
		Long: `Segments are joined into the path. A segment naming a method
(GET, POST, PUT, HEAD, DELETE) selects it instead; the last one wins.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := f.toParams()
			if err != nil {
				return err
			}

			c, err := a.client(cmd.Context())
			if err != nil {
				return err
			}

			for _, seg := range args {
				c.Attr(seg)
			}
			out, err := c.Call(cmd.Context(), params)
			if err != nil {
				return err
			}

			return printResult(cmd, out, f.sel)
		},
	}

	flags := cmd.Flags()
	flags.StringArrayVarP(&f.params, "param", "p", nil, "parameter as key=value, repeatable")
	flags.StringArrayVarP(&f.query, "query", "q", nil, "query parameter for POST and PUT as key=value, repeatable")
	flags.StringVar(&f.contentType, "type", "", "content type of --body")
	flags.StringVar(&f.body, "body", "", "request body, or @file to read it from a file")
	flags.StringVar(&f.url, "url", "", "path overriding the segments, e.g. /item/42")
	flags.StringVar(&f.sel, "select", "", "gjson path selecting part of the result")

	return cmd
}

func (f callFlags) toParams() (transport.Params, error) {
	p := transport.Params{}

	for _, kv := range f.params {
		k, v, err := splitPair(kv)
		if err != nil {
			return nil, err
		}
		p[k] = v
	}

	if len(f.query) > 0 {
		q := map[string]string{}
		for _, kv := range f.query {
			k, v, err := splitPair(kv)
			if err != nil {
				return nil, err
			}
			q[k] = v
		}
		p[transport.KeyQuery] = q
	}

	if f.url != "" {
		p[transport.KeyURL] = f.url
	}

	if f.body != "" || f.contentType != "" {
		if f.contentType == "" {
			return nil, errors.New("--body requires --type")
		}
		body := f.body
		if name, ok := strings.CutPrefix(body, "@"); ok {
			data, err := os.ReadFile(name)
			if err != nil {
				return nil, fmt.Errorf("reading body: %w", err)
			}
			body = string(data)
		}
		p[transport.KeyType] = f.contentType
		p[transport.KeyBody] = body
	}

	return p, nil
}

func splitPair(kv string) (string, string, error) {
	k, v, ok := strings.Cut(kv, "=")
	if !ok || k == "" {
		return "", "", fmt.Errorf("expected key=value, got %q", kv)
	}
	return k, v, nil
}

func printResult(cmd *cobra.Command, out any, sel string) error {
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}

	if sel != "" {
		res := gjson.GetBytes(data, sel)
		if !res.Exists() {
			return fmt.Errorf("%q not found in result", sel)
		}
		if res.Type == gjson.String {
			fmt.Fprintln(cmd.OutOrStdout(), res.String())
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), res.Raw)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
