package pipeline

import (
	"fmt"

	"github.com/prperemyshlev/vidverse/internal/domain"
)

// OwnerProjection joins users onto a foreign key and exposes only public columns.
type OwnerProjection struct {
	Alias     string
	WithEmail bool
}

// Join returns the left outer join for fk, e.g. "v.owner_id".
func (p OwnerProjection) Join(fk string) string {
	return fmt.Sprintf("LEFT JOIN users %s ON %s.id = %s", p.Alias, p.Alias, fk)
}

func (p OwnerProjection) Columns() []string {
	cols := []string{
		p.Alias + ".id",
		p.Alias + ".username",
		p.Alias + ".full_name",
		p.Alias + ".avatar",
	}
	if p.WithEmail {
		cols = append(cols, p.Alias+".email")
	}
	return cols
}

// OwnerScan receives the nullable columns of an OwnerProjection.
type OwnerScan struct {
	withEmail bool
	id        *string
	username  *string
	fullName  *string
	avatar    *string
	email     *string
}

func (p OwnerProjection) Scan() *OwnerScan {
	return &OwnerScan{withEmail: p.WithEmail}
}

// Dest returns scan destinations in Columns order.
func (s *OwnerScan) Dest() []any {
	dest := []any{&s.id, &s.username, &s.fullName, &s.avatar}
	if s.withEmail {
		dest = append(dest, &s.email)
	}
	return dest
}

// Owner collapses the joined row to a single owner, nil when the join matched nothing.
func (s *OwnerScan) Owner() *domain.Owner {
	if s.id == nil {
		return nil
	}
	return &domain.Owner{
		ID:       *s.id,
		Username: deref(s.username),
		FullName: deref(s.fullName),
		Avatar:   deref(s.avatar),
		Email:    deref(s.email),
	}
}

// CountOf renders a correlated count sub-select, e.g. likes on a video.
func CountOf(table, column, ref string) string {
	return fmt.Sprintf("(SELECT COUNT(*) FROM %s WHERE %s = %s)", table, column, ref)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
