// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] is usable at
// startup.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" {
		return ErrInvalidStorageConfigs
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: level %q", ErrInvalidLogConfigs, cfg.Log.Level)
	}
	if strings.TrimSpace(cfg.Log.File) == "" {
		return fmt.Errorf("%w: empty log file", ErrInvalidLogConfigs)
	}

	if cfg.App.SubmitTimeout < 0 {
		return fmt.Errorf("%w: negative submit timeout", ErrInvalidAppConfigs)
	}
	if cfg.App.FormFile != "" {
		if _, err := os.Stat(cfg.App.FormFile); err != nil {
			return fmt.Errorf("%w: form file: %w", ErrInvalidAppConfigs, err)
		}
	}

	return nil
}
