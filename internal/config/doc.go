// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

/*
Package config loads Wardrobe configuration.

# Configuration Sources

Sources are layered, later layers overriding earlier ones:

 1. Struct defaults (defaultConfig)
 2. An optional YAML file: $CONFIG_PATH, ./config.yaml, ./config.yml,
    /etc/wardrobe/config.yaml
 3. Environment variables listed in envMappings. Unlisted variables are ignored.

# Environment Variables

Catalog:
  - CATALOG_PATH: styles CSV path (default: ./data/styles.csv)
  - CATALOG_SOURCE: csv or duckdb (default: csv)
  - CATALOG_IMAGES_DIR: image directory for the asset filter
  - CATALOG_REQUIRE_IMAGES: drop rows without an image (default: false)
  - TAXONOMY_PATH: YAML taxonomy override

Server:
  - HTTP_HOST, HTTP_PORT (default: 0.0.0.0:8080)
  - REQUEST_TIMEOUT (default: 30s)
  - CORS_ORIGINS: comma-separated list (default: *)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT

Reranker:
  - RERANKER_MODE: http or heuristic (default: heuristic)
  - RERANKER_URL: model server endpoint, required in http mode
  - RERANKER_TIMEOUT, RERANKER_RATE_LIMIT, RERANKER_BURST
  - RERANKER_FALLBACK: answer from the heuristic when the model fails
  - RERANKER_CACHE_SIZE, RERANKER_CACHE_TTL (size 0 disables the cache)

History:
  - HISTORY_ENABLED, HISTORY_PATH, HISTORY_IN_MEMORY, HISTORY_RETENTION

Dataset:
  - DATASET_SAMPLES, DATASET_TARGET_RATIO, DATASET_MAX_ATTEMPTS, DATASET_SEED,
    DATASET_REPORT_EVERY, DATASET_FULL_BODY_PROB

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Usage

	cfg, err := config.Load("")
	if err != nil {
	    return fmt.Errorf("load config: %w", err)
	}
*/
package config
