package domain

import "fmt"

// ResourceRecord represents one DNS resource record. RDLENGTH is not a
// field: on encode it is recomputed from the serialized body, and on
// decode it only bounds how many bytes the body may consume.
type ResourceRecord struct {
	Name  string
	Type  RRType
	Class RRClass
	TTL   uint32 // seconds; the wire field is 32 bits and semantically non-negative
	Data  RData
}

// NewResourceRecord constructs a ResourceRecord and validates its fields.
func NewResourceRecord(name string, rrtype RRType, class RRClass, ttl uint32, data RData) (ResourceRecord, error) {
	rr := ResourceRecord{
		Name:  name,
		Type:  rrtype,
		Class: class,
		TTL:   ttl,
		Data:  data,
	}
	if err := rr.Validate(); err != nil {
		return ResourceRecord{}, err
	}
	return rr, nil
}

// Validate checks whether the ResourceRecord fields are structurally valid.
func (rr ResourceRecord) Validate() error {
	if !rr.Class.IsValid() {
		return fmt.Errorf("invalid RRClass: %d", rr.Class)
	}
	if rr.Data == nil {
		return fmt.Errorf("resource record must carry RDATA")
	}
	if rr.Data.RRType() != rr.Type {
		return fmt.Errorf("RDATA type %s does not match record type %s", rr.Data.RRType(), rr.Type)
	}
	return nil
}

// String returns the record in zone-file order: name, ttl, class, type, rdata.
func (rr ResourceRecord) String() string {
	name := rr.Name
	if name == "" {
		name = "."
	}
	return fmt.Sprintf("%s %d %s %s %s", name, rr.TTL, rr.Class, rr.Type, rr.Data)
}
