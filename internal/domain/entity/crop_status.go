package entity

// CropStatus represents the lifecycle stage of a crop listing.
type CropStatus string

const (
	// CropStatusGrowing indicates the crop is still in the ground.
	CropStatusGrowing CropStatus = "GROWING"
	// CropStatusHarvested indicates the crop has been harvested and is purchasable.
	CropStatusHarvested CropStatus = "HARVESTED"
	// CropStatusSold indicates the available quantity reached exactly zero via orders.
	CropStatusSold CropStatus = "SOLD"
)

// String returns the string representation of the CropStatus.
func (s CropStatus) String() string {
	return string(s)
}

// IsValid checks if the CropStatus is a valid value.
func (s CropStatus) IsValid() bool {
	switch s {
	case CropStatusGrowing, CropStatusHarvested, CropStatusSold:
		return true
	default:
		return false
	}
}
