// Package services implements the driving ports: the claim router and the
// document processing pipeline that ties reader, extractor and router
// together.
package services
