// Package apis provides the data types exchanged between the provisioner's components.
//
//   - infra: parameters document, compiled variables, machine inventory and the
//     cluster descriptor written as the result file
package apis
