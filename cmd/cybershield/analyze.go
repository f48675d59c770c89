package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Parekh-Dev/CyberShieldAI-22IT086-22IT094/analysis"
)

func newAnalyzeCmd() *cobra.Command {
	var text string

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Submit text for hate-speech analysis",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			ctrl, st, err := newController(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			if _, err := requireSession(ctrl); err != nil {
				return err
			}

			api, err := newAPIClient()
			if err != nil {
				return err
			}
			svc := analysis.NewService(ctx, api, st)

			verdict, err := svc.Submit(ctx, text)
			if err != nil {
				return renderErr(err)
			}

			out := cmd.OutOrStdout()
			if verdict.IsHateSpeech {
				fmt.Fprintf(out, "Verdict: FLAGGED (confidence %.2f)\n", verdict.Confidence)
				if len(verdict.Categories) > 0 {
					fmt.Fprintf(out, "Categories: %s\n", strings.Join(verdict.Categories, ", "))
				}
			} else {
				fmt.Fprintf(out, "Verdict: SAFE (confidence %.2f)\n", verdict.Confidence)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "Text to analyze")
	_ = cmd.MarkFlagRequired("text")
	return cmd
}

func newHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show the recent analyses, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()

			ctrl, st, err := newController(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			if _, err := requireSession(ctrl); err != nil {
				return err
			}

			api, err := newAPIClient()
			if err != nil {
				return err
			}
			svc := analysis.NewService(ctx, api, st)

			entries := svc.Recent()
			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No analyses yet.")
				return nil
			}
			for i, e := range entries {
				fmt.Fprintf(out, "%d. [%s] %s  %s\n", i+1, e.Status, e.Time, e.Text)
			}
			return nil
		},
	}
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Wait for the backend to answer and print its greeting",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			api, err := newAPIClient()
			if err != nil {
				return err
			}
			res, err := api.AwaitReady(ctx)
			if err != nil {
				return renderErr(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Backend ready: %s\n", res.Message)
			return nil
		},
	}
}
