// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/taibuivan/iso639/internal/platform/constants"
	"github.com/taibuivan/iso639/internal/platform/sec"
)

func newTokenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Sign an access token for the operator endpoints",
		Long: `Sign an RS256 access token for the operator endpoints.

The API verifies it with the public half of --private-key (JWT_PUBLIC_KEY_PATH).`,
		Args: cobra.NoArgs,
		RunE: runToken,
	}
	cmd.Flags().String("private-key", "", "PEM-encoded RSA private key")
	cmd.Flags().String("subject", "", "Token subject, usually the operator's name")
	cmd.Flags().String("role", string(sec.RoleOperator), "Role claim")
	cmd.Flags().Duration("ttl", constants.DefaultTokenTTL, "Token lifetime")
	_ = cmd.MarkFlagRequired("private-key")
	_ = cmd.MarkFlagRequired("subject")
	return cmd
}

func runToken(cmd *cobra.Command, _ []string) error {
	keyPath, _ := cmd.Flags().GetString("private-key")
	subject, _ := cmd.Flags().GetString("subject")
	roleName, _ := cmd.Flags().GetString("role")
	ttl, _ := cmd.Flags().GetDuration("ttl")

	role := sec.UserRole(roleName)
	if !role.Valid() {
		names := make([]string, 0, len(sec.Roles))
		for _, known := range sec.Roles {
			names = append(names, string(known))
		}
		return fmt.Errorf("unknown role %q (want one of %s)", roleName, strings.Join(names, ", "))
	}
	if ttl <= 0 {
		return fmt.Errorf("--ttl must be positive")
	}

	signer, err := sec.LoadSigner(keyPath, constants.AuthIssuer)
	if err != nil {
		return err
	}

	token, err := signer.GenerateAccessToken(subject, role, ttl)
	if err != nil {
		return err
	}

	out := newOutputFormatter(cmd)
	if out.jsonMode {
		return out.Print(map[string]string{
			"token":      token,
			"expires_at": time.Now().Add(ttl).UTC().Format(time.RFC3339),
		})
	}
	return out.Line("token", token)
}
