// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Viktor Perelygin

package store

import (
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/vperelygin/go-conf-sync/models"
)

// Defaults builds the default configuration document. Every top-level key a
// consumer may address exists here even when never explicitly set; a path
// absent from this document is a programming error in the caller, not a
// runtime fault.
//
// The analytics app id and support user id are generated per installation,
// and the labware directory depends on the per-user config directory, which
// is why the document is seeded on first store access rather than at
// process bootstrap.
func Defaults() models.Tree {
	return models.Tree{
		"update": models.Tree{
			"channel": "latest",
		},
		"ui": models.Tree{
			"width":  float64(1024),
			"height": float64(768),
			"url": models.Tree{
				"protocol": "file:",
				"path":     "ui/index.html",
			},
			"webPreferences": models.Tree{
				"webSecurity": true,
			},
		},
		"log": models.Tree{
			"level": models.Tree{
				"console": "info",
				"file":    "debug",
			},
		},
		"alerts": models.Tree{
			"ignored": []any{},
		},
		"analytics": models.Tree{
			"appId":     uuid.NewString(),
			"optedIn":   false,
			"seenOptIn": false,
		},
		"support": models.Tree{
			"userId":    uuid.NewString(),
			"createdAt": float64(time.Now().Unix()),
			"name":      "Unknown User",
			"email":     nil,
		},
		"discovery": models.Tree{
			"candidates": []any{},
		},
		"labware": models.Tree{
			"directory": defaultLabwareDirectory(),
		},
		"devtools": false,
	}
}

func defaultLabwareDirectory() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, "go-conf-sync", "labware")
}
