package compute

import "fmt"

// ValidateGeometry checks a 1-D dispatch against device limits. The global
// size must be an exact multiple of the local size so that every
// work-group is full.
func ValidateGeometry(dev DeviceInfo, globalSize, localSize int) error {
	if globalSize <= 0 || localSize <= 0 {
		return fmt.Errorf("%w: global=%d local=%d", ErrInvalidWorkGroupSize, globalSize, localSize)
	}
	if globalSize%localSize != 0 {
		return fmt.Errorf("%w: global size %d is not a multiple of local size %d",
			ErrInvalidWorkGroupSize, globalSize, localSize)
	}
	if dev.MaxWorkGroupSize > 0 && localSize > dev.MaxWorkGroupSize {
		return fmt.Errorf("%w: local size %d exceeds device maximum %d",
			ErrInvalidWorkGroupSize, localSize, dev.MaxWorkGroupSize)
	}
	return nil
}
