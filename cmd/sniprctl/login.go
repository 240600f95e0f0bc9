package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate and print a bearer token",
	Long: `Logs in with email and password and prints the session token.

Pass the token to other commands via --token.

Example:
  sniprctl login --email=a@x.com --password=secret1`,
	Run: func(cmd *cobra.Command, args []string) {
		var resp struct {
			Token string `json:"token"`
		}
		err := postJSON("/auth/login", "", map[string]string{
			"email":    loginEmail,
			"password": loginPassword,
		}, &resp)
		if err != nil {
			log.Fatalf("login failed: %v", err)
		}
		fmt.Println(resp.Token)
	},
}

func init() {
	loginCmd.Flags().StringVarP(&loginEmail, "email", "e", "", "Account email (required)")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Account password (required)")
	loginCmd.MarkFlagRequired("email")
	loginCmd.MarkFlagRequired("password")
	rootCmd.AddCommand(loginCmd)
}
