// Package server runs the local HTTP invoke endpoint until the context is canceled.
package server
