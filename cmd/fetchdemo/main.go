package main

import (
	"fmt"
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"webbasics/internal/config"
	"webbasics/internal/fetch"
)

func main() {
	cfg := config.Load()
	delay := cfg.FetchDelaySeconds

	fmt.Println("[START] Application execution started.")
	fmt.Printf("[STATUS] Simulating data fetching... will take %d seconds.\n", delay)

	finished := fetch.FetchWithDelay(time.Duration(delay)*time.Second).Settle(
		func(p fetch.Payload) {
			fmt.Println("\n[SUCCESS] Data received after delay:")
			fmt.Println(p)
		},
		func(err error) {
			fmt.Fprintln(os.Stderr, "\n[ERROR] Failed to fetch data:")
			fmt.Fprintln(os.Stderr, err.Error())
		},
		func() {
			fmt.Println("\n[END OF FETCH] Promise handling complete.")
		},
	)

	fmt.Printf("[NON-BLOCKING] This line executes immediately while the %d-second delay is running in the background.\n", delay)

	<-finished
}
