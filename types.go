// Package sdk is the public facade of the script embedding SDK. Hosts
// typically create a host.Executor, include single files into its root
// context, or compose isolated contexts over ordered file lists; the
// aliases here keep the common types one import away.
package sdk

import (
	"github.com/scripthost-dev/scripthost-sdk/domain/entities"
	domerrors "github.com/scripthost-dev/scripthost-sdk/domain/errors"
)

// Config represents the free-form configuration passed to manifest
// rendering and host tooling.
type Config map[string]interface{}

// ErrorDetail is the structured error form crossing the SDK boundary.
//
// Error Types: "argument", "io", "script", "sequence", "manifest", "internal"
type ErrorDetail = entities.ErrorDetail

// BundleManifest describes a pseudo-module bundle of script sources.
type BundleManifest = entities.BundleManifest

// ToErrorDetail converts a Go error to a structured ErrorDetail,
// categorizing the SDK's own error types.
func ToErrorDetail(err error) *ErrorDetail {
	return domerrors.ToErrorDetail(err)
}
