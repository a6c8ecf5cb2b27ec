package types

import "fmt"

// DriveType is the type of drive hosting the link target, as defined by
// GetDriveType in WinBase.h.
type DriveType uint32

const (
	DriveUnknown DriveType = iota
	DriveNoRootDir
	DriveRemovable
	DriveFixed
	DriveRemote
	DriveCDROM
	DriveRAMDisk
)

// MaxDriveType is the highest drive type a volume ID may carry.
const MaxDriveType = DriveRAMDisk

var driveTypeNames = [...]string{
	"DRIVE_UNKNOWN", "DRIVE_NO_ROOT_DIR", "DRIVE_REMOVABLE", "DRIVE_FIXED",
	"DRIVE_REMOTE", "DRIVE_CDROM", "DRIVE_RAMDISK",
}

// Valid reports whether d is one of the seven known drive types.
func (d DriveType) Valid() bool { return d <= MaxDriveType }

func (d DriveType) String() string {
	if d.Valid() {
		return driveTypeNames[d]
	}
	return fmt.Sprintf("DRIVE_TYPE_%d", uint32(d))
}
