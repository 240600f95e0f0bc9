package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var (
	shortenURL   string
	shortenToken string
)

var shortenCmd = &cobra.Command{
	Use:   "shorten",
	Short: "Create a short link for a URL",
	Long: `Shortens a URL and prints the resulting short link.

Example:
  sniprctl shorten --url="https://example.com/some/long/path" --token=$TOKEN`,
	Run: func(cmd *cobra.Command, args []string) {
		var resp struct {
			ShortURL string `json:"shortUrl"`
		}
		err := postJSON("/shorten", shortenToken, map[string]string{
			"originalurl": shortenURL,
		}, &resp)
		if err != nil {
			log.Fatalf("shorten failed: %v", err)
		}
		fmt.Println(resp.ShortURL)
	},
}

func init() {
	shortenCmd.Flags().StringVarP(&shortenURL, "url", "u", "", "URL to shorten (required)")
	shortenCmd.Flags().StringVarP(&shortenToken, "token", "t", "", "Bearer token from 'sniprctl login' (required)")
	shortenCmd.MarkFlagRequired("url")
	shortenCmd.MarkFlagRequired("token")
	rootCmd.AddCommand(shortenCmd)
}
