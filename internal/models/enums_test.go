package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsValidPropertyType(t *testing.T) {
	require.True(t, IsValidPropertyType("Apartment"))
	require.True(t, IsValidPropertyType("Tinyhouse"))
	require.False(t, IsValidPropertyType("apartment"), "enum values are case-sensitive")
	require.False(t, IsValidPropertyType("Castle"))
	require.False(t, IsValidPropertyType(""))
}

func TestFilterValidTagsPreservesOrder(t *testing.T) {
	in := []string{"Gym", "HotTub", "Pool", "Gym"}
	require.Equal(t, []string{"Gym", "Pool", "Gym"}, FilterValidTags(in, ValidAmenities))
}

func TestFilterValidTagsEmptyInput(t *testing.T) {
	out := FilterValidTags(nil, ValidAmenities)
	require.NotNil(t, out)
	require.Empty(t, out)
}
