// Copyright (c) 2026 Etheca. All rights reserved.
// Author: dev@etheca.app

/*
Package ingest deposits accepted theses into the institutional
repository.

A deposit is a single multipart POST carrying the access-rights grant,
the target collection, a MODS metadata record, a resource
classification, and the manuscript itself. The repository answers with
a persistent identifier which is recorded on the thesis.
*/
package ingest

import (
	"encoding/json"
	"fmt"

	"github.com/etheca/etheca/internal/etd/candidate"
	"github.com/etheca/etheca/internal/platform/constants"
)

// Rights derives the repository access-rights grant for a deposit.
// The identity strings are repository-side principals from config.
type Rights struct {
	OwnerID           string
	PublicIdentity    string
	EmbargoedIdentity string
}

/*
Parameters builds the rights grant for a candidacy.

Privately restricted candidacies grant access to the owner only. An
embargo lets the public discover the record but only the embargoed
identity display it; otherwise the public gets both.
*/
func (rights Rights) Parameters(c *candidate.Candidate) map[string]string {
	params := map[string]string{"owner_id": rights.OwnerID}

	if c.PrivateAccessEndDate != nil {
		return params
	}
	if c.EmbargoEndYear != nil {
		params["additional_rights"] = fmt.Sprintf("%s#discover,display+%s#discover",
			rights.EmbargoedIdentity, rights.PublicIdentity)
	} else {
		params["additional_rights"] = rights.PublicIdentity + "#discover,display"
	}
	return params
}

// rightsField encodes the "rights" form field.
func (rights Rights) rightsField(c *candidate.Candidate) (string, error) {
	return parametersField(rights.Parameters(c))
}

// irField encodes the "ir" form field naming the target collection.
func irField(collectionID, depositorName string) (string, error) {
	return parametersField(map[string]string{
		"ir_collection_id": collectionID,
		"depositor_name":   depositorName,
	})
}

// modsField wraps the serialized MODS record for the "mods" form field.
func modsField(modsXML []byte) (string, error) {
	encoded, err := json.Marshal(map[string]string{"xml_data": string(modsXML)})
	if err != nil {
		return "", fmt.Errorf("encode_mods_field: %w", err)
	}
	return string(encoded), nil
}

/*
relsField encodes the "rels" resource classification: the fabio thesis
type for the degree and, for embargoed candidacies, the embargo end
timestamp (the last hour of the embargo year).
*/
func relsField(c *candidate.Candidate) (string, error) {
	rels := map[string]string{"type": constants.TypeURIMastersThesis}
	if c.Degree.IsDoctorate() {
		rels["type"] = constants.TypeURIDoctoralThesis
	}
	if c.EmbargoEndYear != nil {
		rels["embargo_end"] = fmt.Sprintf("%d-12-31T23:00:01Z", *c.EmbargoEndYear)
	}

	encoded, err := json.Marshal(rels)
	if err != nil {
		return "", fmt.Errorf("encode_rels_field: %w", err)
	}
	return string(encoded), nil
}

// contentStreamsField names the document stream inside the deposit.
func contentStreamsField(fileName string) (string, error) {
	encoded, err := json.Marshal([]map[string]string{{"file_name": fileName}})
	if err != nil {
		return "", fmt.Errorf("encode_content_streams_field: %w", err)
	}
	return string(encoded), nil
}

func parametersField(params map[string]string) (string, error) {
	encoded, err := json.Marshal(map[string]any{"parameters": params})
	if err != nil {
		return "", fmt.Errorf("encode_parameters_field: %w", err)
	}
	return string(encoded), nil
}
