package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Parekh-Dev/CyberShieldAI-22IT086-22IT094/validate"
)

func newRegisterCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			// Strength meter is advisory only; a weak password still
			// submits, matching the registration form.
			score := validate.PasswordStrength(password)
			fmt.Fprintf(out, "Password strength: %d/4 (%s)\n", score, validate.StrengthLabel(score))

			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			ctrl, st, err := newController(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			msg, err := ctrl.Register(ctx, email, password)
			if err != nil {
				return renderErr(err)
			}

			log.Debug().Str("email", email).Msg("registration accepted")
			fmt.Fprintf(out, "%s\n", msg)
			fmt.Fprintln(out, "You can now sign in with 'cybershield login'.")
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address (allow-listed domains only)")
	cmd.Flags().StringVar(&password, "password", "", "Password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLoginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with email and password",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			ctrl, st, err := newController(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			if err := ctrl.Login(ctx, email, password); err != nil {
				return renderErr(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&password, "password", "", "Password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and clear the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
			defer cancel()

			ctrl, st, err := newController(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			ctrl.Logout(ctx)
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
			defer cancel()

			ctrl, st, err := newController(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			s := ctrl.Current()
			if s == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Not logged in.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s)\n", s.Identifier, s.AuthMethod)
			return nil
		},
	}
}

func newSendOTPCmd() *cobra.Command {
	var phone string

	cmd := &cobra.Command{
		Use:   "send-otp",
		Short: "Request a one-time code for phone login",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validate.Phone(phone); err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			api, err := newAPIClient()
			if err != nil {
				return err
			}
			res, err := api.SendOTP(ctx, phone)
			if err != nil {
				return renderErr(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", res.Message)
			return nil
		},
	}

	cmd.Flags().StringVar(&phone, "phone", "", "Phone number in international format")
	_ = cmd.MarkFlagRequired("phone")
	return cmd
}

func newVerifyOTPCmd() *cobra.Command {
	var phone, idToken string

	cmd := &cobra.Command{
		Use:   "verify-otp",
		Short: "Complete phone login with the provider ID token",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			ctrl, st, err := newController(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			if err := ctrl.LoginWithPhone(ctx, phone, idToken); err != nil {
				return renderErr(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", phone)
			return nil
		},
	}

	cmd.Flags().StringVar(&phone, "phone", "", "Phone number in international format")
	cmd.Flags().StringVar(&idToken, "id-token", "", "Verification ID token")
	_ = cmd.MarkFlagRequired("phone")
	_ = cmd.MarkFlagRequired("id-token")
	return cmd
}
