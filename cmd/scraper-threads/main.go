// Command scraper-threads reads a list of discussion-thread URLs, extracts
// EV home-charger brand and electricity-tariff mentions from each page, and
// writes the collected rows to a CSV file, optionally publishing each record
// to NATS as well.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/evscout/evscout/engine/scrape"
	"github.com/evscout/evscout/pkg/metrics"
	"github.com/evscout/evscout/pkg/natsutil"
)

func main() {
	urlFile := flag.String("urls", "urls.txt", "newline-delimited list of thread URLs")
	output := flag.String("out", "ev_charger_data.csv", "CSV output path")
	delay := flag.Duration("delay", 2*time.Second, "pause between requests")
	timeout := flag.Duration("timeout", 10*time.Second, "per-request timeout")
	retries := flag.Int("retries", 1, "extra fetch attempts per URL")
	retryWait := flag.Duration("retry-wait", 5*time.Second, "pause before a retry")
	natsURL := flag.String("nats", "", "NATS URL (if set, records are also published)")
	subject := flag.String("subject", "evscout.scraper.records", "NATS subject to publish to")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	urls, err := scrape.ReadURLList(*urlFile)
	if err != nil {
		log.Printf("error: reading %s: %v", *urlFile, err)
	}
	if len(urls) == 0 {
		fmt.Println("No URLs to process. Please create urls.txt with one URL per line.")
		return
	}

	var nc *nats.Conn
	if *natsURL != "" {
		nc, err = nats.Connect(*natsURL)
		if err != nil {
			log.Fatalf("nats connect: %v", err)
		}
		defer nc.Close()
		log.Printf("publishing records to NATS subject %s", *subject)
	}

	reg := metrics.NewRegistry()
	runner := scrape.NewRunner(scrape.Config{
		Delay:     *delay,
		Timeout:   *timeout,
		Retries:   *retries,
		RetryWait: *retryWait,
	}, reg)

	records := runner.Scrape(ctx, urls)

	if nc != nil {
		for _, rec := range records {
			if err := natsutil.Publish(ctx, nc, *subject, rec); err != nil {
				log.Printf("nats publish error: %v", err)
			}
		}
	}

	if err := scrape.WriteCSV(records, *output); err != nil {
		log.Printf("error: %v", err)
	}

	fmt.Printf("\nScraping complete. Data saved to %s with %d entries.\n", *output, len(records))
	log.Printf("run summary:\n%s", runner.Summary())
}
