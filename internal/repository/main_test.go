//go:build integration
// +build integration

package repository

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"testing"

	"myjobs/internal/testutils"
)

// TestMain purges the shared Postgres container after the run, including on Ctrl+C
func TestMain(m *testing.M) {
	interrupted := make(chan os.Signal, 1)
	signal.Notify(interrupted, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-interrupted
		log.Printf("repository tests stopped by %s, purging postgres container", sig)
		testutils.CleanupSharedContainer()
		os.Exit(1)
	}()

	code := m.Run()
	signal.Stop(interrupted)
	testutils.CleanupSharedContainer()
	os.Exit(code)
}
