package types

import (
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// DetectionMethod identifies how a dependency relationship between two
// repositories was discovered by the migrator backend.
type DetectionMethod string

const (
	DetectionMethodSubmodule       DetectionMethod = "submodule"
	DetectionMethodWorkflow        DetectionMethod = "workflow"
	DetectionMethodDependencyGraph DetectionMethod = "dependency_graph"
	DetectionMethodPackage         DetectionMethod = "package"
)

type Scope string

const (
	ScopeAll      Scope = "all"
	ScopeLocal    Scope = "local"
	ScopeExternal Scope = "external"
)

// ParseScope normalizes a user-supplied scope string. An empty value
// defaults to ScopeAll.
func ParseScope(value string) (Scope, error) {
	switch Scope(strings.ToLower(strings.TrimSpace(value))) {
	case "", ScopeAll:
		return ScopeAll, nil
	case ScopeLocal:
		return ScopeLocal, nil
	case ScopeExternal:
		return ScopeExternal, nil
	default:
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("scope must be one of: all, local, external")
	}
}

type ExportFormat string

const (
	ExportFormatCSV  ExportFormat = "csv"
	ExportFormatJSON ExportFormat = "json"
)

// ParseExportFormat normalizes a user-supplied format string. An empty
// value defaults to ExportFormatCSV.
func ParseExportFormat(value string) (ExportFormat, error) {
	switch ExportFormat(strings.ToLower(strings.TrimSpace(value))) {
	case "", ExportFormatCSV:
		return ExportFormatCSV, nil
	case ExportFormatJSON:
		return ExportFormatJSON, nil
	default:
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("export format must be csv or json")
	}
}
