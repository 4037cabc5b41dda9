package domain

import "time"

// Manifest is the plain-text summary written next to a completed retrieval.
type Manifest struct {
	Host      string         `yaml:"host"`
	Device    string         `yaml:"device"`
	CreatedAt time.Time      `yaml:"created_at"`
	Items     []ManifestItem `yaml:"items"`
}

type ManifestItem struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Files    int    `yaml:"files"`
	Bytes    int64  `yaml:"bytes"`
	Digest   string `yaml:"digest"`
	Complete bool   `yaml:"complete"`
}
