// Package constants defines shared constants used across the packing system.
package constants

import "os"

const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions os.FileMode = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions os.FileMode = 0644

	// StorageSchemaVersion is the current on-disk schema version for
	// persisted packing lists. Bump when the stored shape changes.
	StorageSchemaVersion = 1

	// DefaultStorageFile is the default file name for persisted packing lists.
	DefaultStorageFile = "packing-lists.yaml"
)
