package archive

import (
	"context"

	"github.com/czmj/ambridge/internal/driver"
)

// GetCharacterProfile looks a character up by slug. A missing character
// is (nil, nil); the caller maps that to not-found.
func (s *Service) GetCharacterProfile(ctx context.Context, slug string) (*CharacterProfile, error) {
	result, err := s.Driver.ExecuteQuery(ctx, driver.CharacterProfileQuery, map[string]interface{}{
		"slug": slug,
	})
	if err != nil {
		return nil, err
	}
	if len(result.Records) == 0 {
		return nil, nil
	}

	props := asMap(recordValue(result.Records[0], "profile"))
	return &CharacterProfile{
		Slug:   asString(props["slug"]),
		Name:   asString(props["name"]),
		Gender: asString(props["gender"]),
		DOB:    asDateString(props["dob"]),
		DOD:    asDateString(props["dod"]),
	}, nil
}
