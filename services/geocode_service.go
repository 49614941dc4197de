package services

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"sync"
	"time"

	config "github.com/fitstudio/marketplace/configs"
)

type GeocodeResult struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type geocodeResponse struct {
	Results []struct {
		Geometry struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"geometry"`
	} `json:"results"`
	Status struct {
		Code int `json:"code"`
	} `json:"status"`
}

var (
	geocodeCache   = make(map[string]GeocodeResult)
	geocodeCacheMu sync.RWMutex
)

// GeocodeAddress resolves a free-form location string to coordinates via the
// OpenCage API. Results are cached for the process lifetime; studio addresses
// rarely move.
func GeocodeAddress(address string) (*GeocodeResult, error) {
	geocodeCacheMu.RLock()
	if cached, ok := geocodeCache[address]; ok {
		geocodeCacheMu.RUnlock()
		return &cached, nil
	}
	geocodeCacheMu.RUnlock()

	apiKey := config.Config("GEOCODING_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("geocoding API key not configured")
	}

	endpoint := fmt.Sprintf("https://api.opencagedata.com/geocode/v1/json?q=%s&key=%s&limit=1",
		url.QueryEscape(address), apiKey)

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(endpoint)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoding API returned status %d", resp.StatusCode)
	}

	var data geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, err
	}
	if len(data.Results) == 0 {
		return nil, fmt.Errorf("no geocoding result for %q", address)
	}

	result := GeocodeResult{
		Lat: data.Results[0].Geometry.Lat,
		Lng: data.Results[0].Geometry.Lng,
	}

	geocodeCacheMu.Lock()
	geocodeCache[address] = result
	geocodeCacheMu.Unlock()
	log.Printf("Geocoded %q to (%f, %f)", address, result.Lat, result.Lng)

	return &result, nil
}
