// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/campaign). This root
// package holds the sentinel errors and the field-level validation error that
// every layer translates to and from.
package domain
