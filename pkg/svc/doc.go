// Package svc provides the service layer of tfinfra.
//
// This package contains the logic that sits between the CLI commands and the
// terraform client.
//
// Subpackages:
//   - cloud: cloud plugins (AWS, DigitalOcean, Hetzner) and backend selection
//   - variables: terraform variable compilation
//   - composer: cluster descriptor assembly and redaction
//   - provisioner: terraform life-cycle commands for the selected plugin
//   - discover: the command manifest printed by discover
package svc
