// Package state provides a lightweight FSM/session manager for multi-step
// Telegram dialogues. One session slot is kept per user; starting a new
// dialogue overwrites whatever unfinished dialogue the slot held.
package state
