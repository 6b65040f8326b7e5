// Package loader ingests course catalogs from disk. It owns all file I/O
// and line/field handling, presenting the core with trimmed, shape-checked
// records only. Two formats are supported: the classic CSV layout and HCL
// course blocks.
package loader
