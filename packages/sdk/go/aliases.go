// File generated from our OpenAPI spec by Stainless. See CONTRIBUTING.md for details.

package opencode

import (
	"github.com/sst/opencode-sdk-go/internal/apierror"
	"github.com/sst/opencode-sdk-go/packages/param"
	"github.com/sst/opencode-sdk-go/shared"
)

// aliased to make [param.APIUnion] private when embedding
type paramUnion = param.APIUnion

// aliased to make [param.APIObject] private when embedding
type paramObj = param.APIObject

type Error = apierror.Error

// This is an alias to an internal type.
type McpLocalConfig = shared.McpLocalConfig

// This is an alias to an internal type.
type McpLocalConfigParam = shared.McpLocalConfigParam

// This is an alias to an internal type.
type McpRemoteConfig = shared.McpRemoteConfig

// This is an alias to an internal type.
type McpRemoteConfigParam = shared.McpRemoteConfigParam
