package types

// RawDependencyRecord is a single dependency-detection event reported by
// the migrator backend. The same target repository may appear in several
// records when more than one detection method found it.
type RawDependencyRecord struct {
	ID                 string          `json:"id"`
	RepositoryID       string          `json:"repository_id"`
	DependencyFullName string          `json:"dependency_full_name"`
	DependencyURL      string          `json:"dependency_url"`
	DependencyType     DetectionMethod `json:"dependency_type"`
	IsLocal            bool            `json:"is_local"`

	// Metadata is a JSON-encoded object whose shape depends on
	// DependencyType. Malformed payloads are tolerated.
	Metadata string `json:"metadata,omitempty"`
}

// DependencyMetadata is the parsed form of a record's metadata payload,
// tagged with the detection method that produced it. All detail fields
// are optional and type-dependent.
type DependencyMetadata struct {
	Source         DetectionMethod `json:"source"`
	Path           string          `json:"path,omitempty"`
	Branch         string          `json:"branch,omitempty"`
	WorkflowFile   string          `json:"workflow_file,omitempty"`
	Ref            string          `json:"ref,omitempty"`
	Manifest       string          `json:"manifest,omitempty"`
	PackageManager string          `json:"package_manager,omitempty"`
}

// MergedDependency is the per-target-repository aggregate of all raw
// detection records sharing a DependencyFullName. Scalar fields come
// from the first-seen record; DetectionMethods, AllMetadata and IsLocal
// accumulate across duplicates.
type MergedDependency struct {
	ID                 string          `json:"id"`
	RepositoryID       string          `json:"repository_id"`
	DependencyFullName string          `json:"dependency_full_name"`
	DependencyURL      string          `json:"dependency_url"`
	DependencyType     DetectionMethod `json:"dependency_type"`
	IsLocal            bool            `json:"is_local"`

	DetectionMethods []DetectionMethod    `json:"detection_methods"`
	AllMetadata      []DependencyMetadata `json:"all_metadata,omitempty"`
}

// DependencySummary is the caller-side rollup over a merged dependency
// list. ByType multi-counts: an entry detected by two methods increments
// both counters.
type DependencySummary struct {
	Total    int                     `json:"total"`
	Local    int                     `json:"local"`
	External int                     `json:"external"`
	ByType   map[DetectionMethod]int `json:"by_type"`
}

// Dependent is a repository that depends on the one being inspected.
type Dependent struct {
	ID              string            `json:"id"`
	FullName        string            `json:"full_name"`
	Status          string            `json:"status"`
	SourceURL       string            `json:"source_url"`
	DependencyTypes []DetectionMethod `json:"dependency_types"`
}
