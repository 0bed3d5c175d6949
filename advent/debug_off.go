//go:build !advent_debug

package main

const debugBuild = false
