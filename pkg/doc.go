// Package pkg provides the core libraries for bodymap label placement.
//
// # Overview
//
// Bodymap computes readable, non-overlapping annotation layouts for
// affected anatomical regions on a fixed body diagram. The pkg
// directory is organized into five areas:
//
//  1. [layout] - The placement engine (columns, spacing, connectors)
//  2. [anatomy] - The region vocabulary, severity grading, and diagram geometry
//  3. [findings] - Classification report parsing
//  4. [observability] - Hook interfaces for metrics and tracing
//  5. [errors] - Structured error types with machine-readable codes
//
// # Architecture
//
// The typical data flow through bodymap:
//
//	Classification Report (YAML/JSON)
//	         ↓
//	    [findings] package (match identifiers, grade severity)
//	         ↓
//	    [anatomy] package (vocabulary + source points)
//	         ↓
//	    [layout] package (columns, spacing, connector paths)
//	         ↓
//	    plan.json output
//
// # Quick Start
//
//	report, err := findings.ReadFile("report.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	regions, _ := report.Regions()
//
//	engine, err := layout.New(layout.DefaultConfig(), anatomy.BodyMap)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	plan := engine.Plan(regions)
//
// The layout engine is pure and deterministic: identical inputs yield
// bit-identical plans, and a plan computation never fails. See the
// individual package docs for details.
package pkg
