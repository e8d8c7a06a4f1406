// SPDX-License-Identifier: MIT
package lexer

import (
	"github.com/sirupsen/logrus"
)

type (
	// Config defines configuration options for the Lexer's operations.
	Config struct {
		Logger logrus.FieldLogger

		// BufferSize is the capacity of the channel Lex delivers Lexemes over.
		BufferSize int

		// Debug enables per-Lexeme logging & rendering checks.
		Debug bool
	}
)

const (
	// DefaultBufferSize is the default Lexeme channel capacity & source read size.
	DefaultBufferSize = 64
)

// DefaultConfig configures the Lexer's Config.
func DefaultConfig() *Config {
	return &Config{
		BufferSize: DefaultBufferSize,
		Logger:     logrus.New(),
	}
}

// Validate populates missing Config entries with defaults.
func (c *Config) Validate() {
	if c.BufferSize < 1 {
		c.BufferSize = DefaultBufferSize
	}
	if c.Logger == nil {
		c.Logger = logrus.New()
	}
}
