package environment

import "os"

func GetPort() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return port
}

// GetStorageBackend selects the persistence layer: "file" (default) keeps
// records in a local JSON file, "firestore" uses the hosted document database.
func GetStorageBackend() string {
	backend := os.Getenv("STORAGE_BACKEND")
	if backend == "" {
		backend = "file"
	}
	return backend
}

func GetDataFile() string {
	path := os.Getenv("DATA_FILE")
	if path == "" {
		path = "platetrail.json"
	}
	return path
}

func GetJWTSecret() string {
	return os.Getenv("JWT_SECRET")
}

func GetFirebaseKey() string {
	return os.Getenv("FIREBASE_CREDENTIALS_BASE64")
}

func GetFirebaseProjectID() string {
	return os.Getenv("FIREBASE_PROJECT_ID")
}

func GetGeocodeBaseURL() string {
	url := os.Getenv("GEOCODE_BASE_URL")
	if url == "" {
		url = "https://nominatim.openstreetmap.org"
	}
	return url
}
