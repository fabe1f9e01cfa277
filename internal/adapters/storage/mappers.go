package storage

import (
	"github.com/barkhq/barksound/internal/domain"
)

// mirrorEventModelToDomain converts a MirrorEventModel (GORM) to domain.MirrorEvent
func mirrorEventModelToDomain(m MirrorEventModel) domain.MirrorEvent {
	return domain.MirrorEvent{
		CreatedAt: m.CreatedAt,
		Error:     m.Error,
		FileName:  m.FileName,
		ID:        m.ID,
		Op:        domain.MirrorOp(m.Op),
	}
}

// domainToMirrorEventModel converts a domain.MirrorEvent to MirrorEventModel (GORM)
func domainToMirrorEventModel(e domain.MirrorEvent) MirrorEventModel {
	return MirrorEventModel{
		CreatedAt: e.CreatedAt,
		Error:     e.Error,
		FileName:  e.FileName,
		ID:        e.ID,
		Op:        string(e.Op),
	}
}
