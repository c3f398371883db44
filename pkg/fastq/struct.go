package fastq

// Record is one FASTQ record: name line, sequence, note line ("+"), quality.
// Lines are stored whitespace-trimmed; no further validation is done, the
// source is trusted.
type Record struct {
	Name string
	Seq  string
	Note string
	Qual string
}

// Bytes formats the record back to its 4-line form.
func (r Record) Bytes() []byte {
	return []byte(r.Name + "\n" + r.Seq + "\n" + r.Note + "\n" + r.Qual + "\n")
}

// Pair is one paired-end fragment, read 1 and read 2.
type Pair struct {
	R1 Record
	R2 Record
}
