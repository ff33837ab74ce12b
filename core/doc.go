// Package core holds the connector error model, runtime configuration and the
// collaborator contracts shared by the accessor, currency and webhook
// packages. core must not depend on any of those packages.
package core
