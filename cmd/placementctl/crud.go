package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/justsurfingit/placement-portal/internal/remote"
	"github.com/spf13/cobra"
)

func newGetCmd(newClient func() *remote.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "get <resource> <id>",
		Short: "Show one record as JSON",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkResource(args[0]); err != nil {
				return err
			}
			rec, err := newClient().Get(cmd.Context(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("get %s %s: %w", args[0], args[1], err)
			}
			return printJSON(cmd.OutOrStdout(), rec)
		},
	}
}

func newCreateCmd(newClient func() *remote.Client) *cobra.Command {
	var data string
	cmd := &cobra.Command{
		Use:     "create <resource> --data JSON",
		Short:   "Create a record",
		Example: `  placementctl create company --data '{"name":"Acme","industry":"Software"}'`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkResource(args[0]); err != nil {
				return err
			}
			body, err := parseData(data)
			if err != nil {
				return err
			}
			rec, err := newClient().Create(cmd.Context(), args[0], body)
			if err != nil {
				return fmt.Errorf("create %s: %w", args[0], err)
			}
			return printJSON(cmd.OutOrStdout(), rec)
		},
	}
	cmd.Flags().StringVar(&data, "data", "", "request body as a JSON object")
	_ = cmd.MarkFlagRequired("data")
	return cmd
}

func newUpdateCmd(newClient func() *remote.Client) *cobra.Command {
	var data string
	cmd := &cobra.Command{
		Use:   "update <resource> <id> --data JSON",
		Short: "Replace a record's fields",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkResource(args[0]); err != nil {
				return err
			}
			body, err := parseData(data)
			if err != nil {
				return err
			}
			rec, err := newClient().Update(cmd.Context(), args[0], args[1], body)
			if err != nil {
				return fmt.Errorf("update %s %s: %w", args[0], args[1], err)
			}
			return printJSON(cmd.OutOrStdout(), rec)
		},
	}
	cmd.Flags().StringVar(&data, "data", "", "request body as a JSON object")
	_ = cmd.MarkFlagRequired("data")
	return cmd
}

func newDeleteCmd(newClient func() *remote.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <resource> <id>",
		Short: "Delete a record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkResource(args[0]); err != nil {
				return err
			}
			if err := newClient().Delete(cmd.Context(), args[0], args[1]); err != nil {
				return fmt.Errorf("delete %s %s: %w", args[0], args[1], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s %s\n", args[0], args[1])
			return nil
		},
	}
}

func parseData(data string) (map[string]any, error) {
	var body map[string]any
	if err := json.Unmarshal([]byte(data), &body); err != nil {
		return nil, fmt.Errorf("invalid --data (expected a JSON object): %w", err)
	}
	return body, nil
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
