// Package menu provides the card entities: categories and menu items.
// Menu items carry the current card price; orders snapshot that price when a
// line item is added, so card changes never rewrite history.
package menu
