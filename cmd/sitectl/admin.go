package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"studio-site/internal/auth"
	"studio-site/internal/domain"
	"studio-site/internal/usecase"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Admin account and secret helpers",
}

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password",
	Short: "Read a password from stdin and print its argon2id hash",
	Long: `hash-password reads one line from stdin and prints the hash to put in
admin.password_hash (or SITE_ADMIN_PASSWORD_HASH).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		password, err := readLine(cmd.InOrStdin())
		if err != nil {
			return err
		}
		hash, err := auth.HashPassword(password)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), hash)
		return nil
	},
}

var setKeyCmd = &cobra.Command{
	Use:   "set-key <provider>",
	Short: "Read a provider API key from stdin and store it in the secret store",
	Long: `set-key stores the key under <param_prefix>/chat/<provider>/api-key. Use the
provider "lovable" for the key of the built-in default gateway.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		provider := strings.ToLower(strings.TrimSpace(args[0]))
		if _, known := domain.ProviderModels[provider]; !known && provider != domain.ProviderDefault {
			return fmt.Errorf("unsupported provider %q", provider)
		}
		key, err := readLine(cmd.InOrStdin())
		if err != nil {
			return err
		}

		st, err := openStores(cmd.Context(), appConfig)
		if err != nil {
			return err
		}
		defer st.close()

		name := usecase.ProviderKeyName(appConfig.ParamPrefix, provider)
		if err := st.secrets.PutSecret(cmd.Context(), name, key); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "stored key for %s at %s\n", provider, name)
		return nil
	},
}

// readLine returns the first line of r without its line ending.
func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", errors.New("no input on stdin")
	}
	return line, nil
}

func init() {
	adminCmd.AddCommand(hashPasswordCmd, setKeyCmd)
	rootCmd.AddCommand(adminCmd)
}
