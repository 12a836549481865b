/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package uschess

import "time"

type EventID int

// Event is one tournament a member appears in on their USCF history page.
type Event struct {
	EndDate time.Time
	Name    string
	ID      EventID
}
