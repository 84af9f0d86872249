package config

import (
	"fmt"
	"log"
	"strings"
	"time"
)

const defaultShutdownTimeout = 15 * time.Second

// ShutdownConfig bounds how long servers get to drain in-flight requests.
// A collection write in progress finishes within this window.
type ShutdownConfig struct {
	Timeout time.Duration `koanf:"timeout"`
}

// String returns a string representation of the ShutdownConfig.
func (c *ShutdownConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Shutdown ---\n")
	b.WriteString(fmt.Sprintf("  timeout: %s\n", c.Timeout))
	return b.String()
}

func (c *ShutdownConfig) Validate() error {
	switch {
	case c.Timeout == 0:
		log.Println("Using default value for shutdown timeout")
		c.Timeout = defaultShutdownTimeout
	case c.Timeout < 0:
		return fmt.Errorf("invalid shutdown timeout: %v", c.Timeout)
	}
	return nil
}
