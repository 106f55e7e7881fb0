package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "wallet-cli",
		Short: "Wallet ledger CLI tool",
		Long:  `A command line interface for interacting with the wallet ledger API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the wallet ledger API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(
		createCmd(),
		creditCmd(),
		debitCmd(),
		balanceCmd(),
		walletsCmd(),
		transactionsCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func createCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <user_id> <user_name> <phone> <balance>",
		Short: "Create a wallet with a founding deposit",
		Args:  cobra.ExactArgs(4),
		Run: func(cmd *cobra.Command, args []string) {
			doRequest(http.MethodPost, "/api/v1/wallets", map[string]string{
				"user_id":   args[0],
				"user_name": args[1],
				"phone":     args[2],
				"balance":   args[3],
			})
		},
	}
}

func creditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "credit <user_id> <amount>",
		Short: "Add funds to a wallet",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			doRequest(http.MethodPost, "/api/v1/wallets/"+args[0]+"/credit", map[string]string{
				"amount": args[1],
			})
		},
	}
}

func debitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "debit <user_id> <amount>",
		Short: "Spend funds from a wallet",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			doRequest(http.MethodPost, "/api/v1/wallets/"+args[0]+"/debit", map[string]string{
				"amount": args[1],
			})
		},
	}
}

func balanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance <user_id>",
		Short: "Show a wallet's balance",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			doRequest(http.MethodGet, "/api/v1/wallets/"+args[0]+"/balance", nil)
		},
	}
}

func walletsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wallets",
		Short: "List all wallets",
		Run: func(cmd *cobra.Command, args []string) {
			doRequest(http.MethodGet, "/api/v1/wallets", nil)
		},
	}
}

func transactionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transactions [user_id]",
		Short: "List transaction history, optionally for one wallet",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			path := "/api/v1/transactions"
			if len(args) == 1 {
				path = "/api/v1/wallets/" + args[0] + "/transactions"
			}
			doRequest(http.MethodGet, path, nil)
		},
	}
}

func doRequest(method, path string, payload map[string]string) {
	client := &http.Client{Timeout: timeout}

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			fmt.Printf("Failed to encode request: %v\n", err)
			os.Exit(1)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, baseURL+path, body)
	if err != nil {
		fmt.Printf("Failed to build request: %v\n", err)
		os.Exit(1)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		fmt.Printf("Status: %d\n%s\n", resp.StatusCode, string(raw))
		if resp.StatusCode >= http.StatusBadRequest {
			os.Exit(1)
		}
		return
	}

	fmt.Printf("Status: %d\n", resp.StatusCode)
	printJSON(parsed)

	if resp.StatusCode >= http.StatusBadRequest {
		os.Exit(1)
	}
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("Failed to format response: %v\n", err)
		return
	}
	fmt.Println(string(out))
}
