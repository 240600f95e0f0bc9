package main

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"
)

var statsShortID string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show click statistics for a short link",
	Long: `Fetches public statistics for a short id.

Example:
  sniprctl stats --id=abc1234`,
	Run: func(cmd *cobra.Command, args []string) {
		var resp struct {
			ShortID     string     `json:"shortId"`
			OriginalURL string     `json:"originalurl"`
			Clicks      uint       `json:"clicks"`
			CreatedAt   time.Time  `json:"createdAt"`
			LastClick   *time.Time `json:"lastClick"`
		}
		if err := getJSON("/stats/"+statsShortID, &resp); err != nil {
			log.Fatalf("stats failed: %v", err)
		}

		fmt.Printf("Short id:  %s\n", resp.ShortID)
		fmt.Printf("Target:    %s\n", resp.OriginalURL)
		fmt.Printf("Clicks:    %d\n", resp.Clicks)
		fmt.Printf("Created:   %s\n", resp.CreatedAt.Format(time.RFC3339))
		if resp.LastClick != nil {
			fmt.Printf("Last click: %s\n", resp.LastClick.Format(time.RFC3339))
		} else {
			fmt.Println("Last click: never")
		}
	},
}

func init() {
	statsCmd.Flags().StringVarP(&statsShortID, "id", "i", "", "Short id to look up (required)")
	statsCmd.MarkFlagRequired("id")
	rootCmd.AddCommand(statsCmd)
}
