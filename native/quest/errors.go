package quest

import "errors"

var (
	ErrNoBeneficiary       = errors.New("quest: pool has no beneficiary")
	ErrCampaignStillActive = errors.New("quest: previous campaign still active")
	ErrReentrantCall       = errors.New("quest: reentrant call")
	ErrNilHook             = errors.New("quest: nil fee hook engine")
	ErrNilCollaborator     = errors.New("quest: nil external collaborator")
	ErrNoPeriods           = errors.New("quest: campaign has no reward periods")
	ErrAssetsNotCached     = errors.New("quest: pool asset cache missing")
)
