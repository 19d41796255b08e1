// Package config provides configuration management for viavictl.
//
// Configuration is loaded from up to three layers, later layers overriding
// earlier ones field by field:
//
//  1. Default Configuration (compiled into the binary)
//     - Reproduces the manual Viavi pipeline setup for srsgnb on gitlab.com
//
//  2. User Configuration (~/.config/viavictl/config.yaml)
//     - Personal overrides, e.g. a self-hosted GitLab instance
//
//  3. Project Configuration (./.viavictl/config.yaml)
//     - Checkout-specific settings shared via version control
//
// # Configuration Structure
//
//	gitlab:
//	  baseURL: "https://gitlab.com"
//	  project: "softwareradiosystems/srsgnb"
//	catalog:
//	  path: "tests/e2e/tests/viavi/test_declaration.yml"
//	pipeline:
//	  infrastructureTag: "amd64-avx2-avx512"
//	  os: "ubuntu-24.04"
//	  compiler: "gcc"
//	  testMode: "none"
//	  makeArgs: "-j6"
//	  testbed: "viavi"
//	  markers: "viavi_manual"
//	  retinaArgs: "gnb.all.pcap=True gnb.all.rlc_enable=True gnb.all.rlc_rb_type=srb"
//	  retinaPodTimeout: 900
//	  e2eLogLevel: "warning"
//	  group: "viavi"
//	  description: "Viavi manual test"
//
// Empty or zero values in an overlay never clear a value from a lower layer.
//
// # Environment Variable Expansion
//
// Configuration values support environment variable expansion:
//
//	gitlab:
//	  baseURL: "${CI_SERVER_URL}"
//	  project: "${VIAVI_PROJECT:-softwareradiosystems/srsgnb}"
package config
