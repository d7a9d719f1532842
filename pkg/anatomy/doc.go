// Package anatomy defines the closed vocabulary of body regions the
// bodymap diagram can annotate.
//
// The vocabulary is fixed: every region has a canonical id, the aliases
// a classification provider may use for it, a display color key, and a
// source point on the reference front-view diagram. Identifiers coming
// from upstream are matched case-insensitively by substring containment
// ("left kidney" resolves to "kidney"); anything that matches no alias
// is simply not a region.
//
// The package also normalizes severity tags and provides the keyword
// fallback used when a report carries no usable severity.
package anatomy
