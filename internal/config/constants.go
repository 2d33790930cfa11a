package config

// SourceFileExt is the canonical source file extension.
const SourceFileExt = ".mica"

// SourceFileExtensions are all recognized source file extensions.
var SourceFileExtensions = []string{".mica"}

// ManifestFileName is the package manifest looked up in a package root.
const ManifestFileName = "mica.yaml"

// CacheDirName is the per-package directory holding the build cache.
const CacheDirName = ".mica"

// CacheFileName is the SQLite build cache inside CacheDirName.
const CacheFileName = "check.db"
