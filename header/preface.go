package header

import (
	"github.com/ugparu/mxfheader/bo"
	"github.com/ugparu/mxfheader/mxfuid"
)

// Preface is the rich object for the header partition's single
// Preface set: the entry point into the package graph.
type Preface struct {
	bo *bo.Preface

	PrimaryPackage GenericPackage
	ContentStorage *ContentStorage
}

func newPreface(b *bo.Preface, primary GenericPackage, cs *ContentStorage) *Preface {
	return &Preface{bo: b, PrimaryPackage: primary, ContentStorage: cs}
}

// InstanceUID returns the set's instance UID.
func (p *Preface) InstanceUID() mxfuid.MXFUid { return p.bo.Base().InstanceUID }

// LastModifiedDate returns the decoded field from the underlying BO.
func (p *Preface) LastModifiedDate() bo.Timestamp { return p.bo.LastModifiedDate }

// Version returns the decoded field from the underlying BO.
func (p *Preface) Version() uint16 { return p.bo.Version }
