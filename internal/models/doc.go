// Package models defines the core domain models for drinkorder.
//
// # Models
//
//   - Shop / MenuItem: the drink shop catalog a group order is placed against
//   - GroupOrder: one collective order open to many participants until its deadline
//   - LineItem: one participant's drink selection inside a group order
//   - Catalog: selectable sizes, sweetness and ice levels, and topping prices
//   - SiteSettings: site-wide display settings
//
// Participants are identified by display name strings (no user accounts).
//
// # Design Principles
//
// 1. **Names, not accounts**: PersonName and CreatorName are free text, trimmed on input
// 2. **Derived money**: LineItem.Subtotal is always computed server-side, never taken from clients
// 3. **Avoid circular references**: Use ID strings instead of pointers for relationships
package models
