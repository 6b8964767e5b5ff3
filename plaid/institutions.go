package plaid

type Institution struct {
	InstitutionID string    `json:"institution_id"`
	Name          string    `json:"name"`
	Products      []Product `json:"products"`
	CountryCodes  []string  `json:"country_codes"`
	URL           string    `json:"url"`
}

type InstitutionsResponse struct {
	Institutions []Institution `json:"institutions"`
	Total        int           `json:"total"`
	RequestID    string        `json:"request_id"`
}

func (pc *PlaidClient) ListInstitutions(count, offset int) (*InstitutionsResponse, error) {
	resp := InstitutionsResponse{}
	err := pc.Request(
		"POST",
		"/institutions/get",
		map[string]interface{}{
			"count":         count,
			"offset":        offset,
			"country_codes": []string{"US"},
		},
		&resp,
	)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (pc *PlaidClient) GetInstitution(id string) (*Institution, error) {
	resp := struct {
		Institution Institution `json:"institution"`
		RequestID   string      `json:"request_id"`
	}{}
	err := pc.Request(
		"POST",
		"/institutions/get_by_id",
		map[string]interface{}{
			"institution_id": id,
			"country_codes":  []string{"US"},
			"options": map[string]interface{}{
				"include_optional_metadata": true,
			},
		},
		&resp,
	)
	if err != nil {
		return nil, err
	}
	return &resp.Institution, nil
}
