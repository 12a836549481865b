/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"

	"github.com/mikeb26/swisstd/swiss"
)

// Store is the persistence seam shared by store/memory, store/realtime,
// transport/http, and frontend/discord — satisfied by *memory.Store and
// *realtime.Store without either package importing the other.
type Store interface {
	Load(ctx context.Context, name string) (*swiss.Section, error)
	Save(ctx context.Context, sec *swiss.Section) error
	Mutate(ctx context.Context, name string, fn func(*swiss.Section) error) error
}
