// Package shaders holds the GLSL sources for the render passes.
package shaders

// PBRVertex transforms geometry and builds the TBN basis for normal mapping.
const PBRVertex = `#version 410 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec4 aColor;
layout (location = 2) in vec2 aTexCoord;
layout (location = 3) in vec3 aNormal;
layout (location = 4) in vec3 aTangent;
layout (location = 5) in vec3 aBitangent;

out vec3 FragPos;
out vec4 VertColor;
out vec2 TexCoord;
out vec3 Normal;
out mat3 TBN;
out vec4 FragPosLightSpace;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;
uniform mat3 normalMatrix;
uniform mat4 lightSpaceMatrix;

void main() {
    vec4 worldPos = model * vec4(aPos, 1.0);
    FragPos = worldPos.xyz;
    VertColor = aColor;
    TexCoord = aTexCoord;

    Normal = normalize(normalMatrix * aNormal);
    vec3 T = normalize(normalMatrix * aTangent);
    vec3 B = normalize(normalMatrix * aBitangent);
    TBN = mat3(T, B, Normal);

    FragPosLightSpace = lightSpaceMatrix * worldPos;

    gl_Position = projection * view * worldPos;
}
`

// PBRFragment is the Cook-Torrance shader: GGX distribution, Smith geometry,
// Fresnel-Schlick, with per-map fallbacks to the material scalars, one
// shadow-casting light, Reinhard tonemapping and gamma correction.
const PBRFragment = `#version 410 core
in vec3 FragPos;
in vec4 VertColor;
in vec2 TexCoord;
in vec3 Normal;
in mat3 TBN;
in vec4 FragPosLightSpace;

out vec4 FragColor;

const int MAX_LIGHTS = 16;
const float PI = 3.14159265359;

uniform vec4 baseColor;
uniform float metallicValue;
uniform float roughnessValue;
uniform vec3 emissiveValue;

uniform sampler2D albedoMap;
uniform sampler2D normalMap;
uniform sampler2D metallicMap;
uniform sampler2D roughnessMap;
uniform sampler2D aoMap;
uniform sampler2D emissiveMap;
uniform sampler2D metallicRoughnessMap;
uniform sampler2D shadowMap;

uniform bool hasAlbedoMap;
uniform bool hasNormalMap;
uniform bool hasMetallicMap;
uniform bool hasRoughnessMap;
uniform bool hasAOMap;
uniform bool hasEmissiveMap;
uniform bool hasMetallicRoughnessMap;

uniform vec3 lightPositions[MAX_LIGHTS];
uniform vec3 lightColors[MAX_LIGHTS];
uniform float lightIntensities[MAX_LIGHTS];
uniform int numLights;
uniform int shadowLightIndex;

uniform vec3 viewPos;

float DistributionGGX(vec3 N, vec3 H, float roughness) {
    float a = roughness * roughness;
    float a2 = a * a;
    float NdotH = max(dot(N, H), 0.0);
    float denom = NdotH * NdotH * (a2 - 1.0) + 1.0;
    return a2 / (PI * denom * denom);
}

float GeometrySchlickGGX(float NdotV, float roughness) {
    float r = roughness + 1.0;
    float k = (r * r) / 8.0;
    return NdotV / (NdotV * (1.0 - k) + k);
}

float GeometrySmith(vec3 N, vec3 V, vec3 L, float roughness) {
    float ggx1 = GeometrySchlickGGX(max(dot(N, V), 0.0), roughness);
    float ggx2 = GeometrySchlickGGX(max(dot(N, L), 0.0), roughness);
    return ggx1 * ggx2;
}

vec3 FresnelSchlick(float cosTheta, vec3 F0) {
    return F0 + (1.0 - F0) * pow(clamp(1.0 - cosTheta, 0.0, 1.0), 5.0);
}

float ShadowCalculation(vec4 fragPosLightSpace, vec3 N, vec3 L) {
    vec3 projCoords = fragPosLightSpace.xyz / fragPosLightSpace.w;
    projCoords = projCoords * 0.5 + 0.5;

    // Beyond the light far plane or outside the frustum: fully lit.
    if (projCoords.z > 1.0) {
        return 0.0;
    }
    if (projCoords.x < 0.0 || projCoords.x > 1.0 ||
        projCoords.y < 0.0 || projCoords.y > 1.0) {
        return 0.0;
    }

    float bias = max(0.0015 * (1.0 - dot(N, L)), 0.0005);
    float currentDepth = projCoords.z - bias;

    float shadow = 0.0;
    vec2 texelSize = 1.0 / vec2(textureSize(shadowMap, 0));
    for (int x = -1; x <= 1; x++) {
        for (int y = -1; y <= 1; y++) {
            float pcfDepth = texture(shadowMap, projCoords.xy + vec2(x, y) * texelSize).r;
            shadow += currentDepth > pcfDepth ? 1.0 : 0.0;
        }
    }
    shadow /= 9.0;

    // Fade the shadow out over the last 15% toward the map border so the
    // frustum edge never shows as a hard line.
    vec2 border = min(projCoords.xy, 1.0 - projCoords.xy);
    float fade = smoothstep(0.0, 0.15, min(border.x, border.y));
    return shadow * fade;
}

void main() {
    vec4 albedoSample = hasAlbedoMap
        ? texture(albedoMap, TexCoord)
        : baseColor * VertColor;
    if (albedoSample.a < 0.5) {
        discard;
    }
    vec3 albedo = pow(albedoSample.rgb, vec3(2.2));

    float metallic = metallicValue;
    float roughness = roughnessValue;
    if (hasMetallicRoughnessMap) {
        vec3 mr = texture(metallicRoughnessMap, TexCoord).rgb;
        metallic = mr.b;
        roughness = mr.g;
    } else {
        if (hasMetallicMap) {
            metallic = texture(metallicMap, TexCoord).r;
        }
        if (hasRoughnessMap) {
            roughness = texture(roughnessMap, TexCoord).r;
        }
    }
    float ao = hasAOMap ? texture(aoMap, TexCoord).r : 1.0;
    vec3 emissive = hasEmissiveMap
        ? texture(emissiveMap, TexCoord).rgb
        : emissiveValue;

    vec3 N = normalize(Normal);
    if (hasNormalMap) {
        vec3 tangentNormal = texture(normalMap, TexCoord).rgb * 2.0 - 1.0;
        N = normalize(TBN * tangentNormal);
    }
    vec3 V = normalize(viewPos - FragPos);

    vec3 F0 = mix(vec3(0.04), albedo, metallic);

    vec3 Lo = vec3(0.0);
    for (int i = 0; i < numLights && i < MAX_LIGHTS; i++) {
        vec3 L = normalize(lightPositions[i] - FragPos);
        vec3 H = normalize(V + L);
        float dist = length(lightPositions[i] - FragPos);
        float attenuation = 1.0 / (dist * dist);
        vec3 radiance = lightColors[i] * lightIntensities[i] * attenuation;

        float NDF = DistributionGGX(N, H, roughness);
        float G = GeometrySmith(N, V, L, roughness);
        vec3 F = FresnelSchlick(max(dot(H, V), 0.0), F0);

        vec3 numerator = NDF * G * F;
        float denominator = 4.0 * max(dot(N, V), 0.0) * max(dot(N, L), 0.0) + 0.0001;
        vec3 specular = numerator / denominator;

        vec3 kD = (vec3(1.0) - F) * (1.0 - metallic);

        float shadow = 0.0;
        if (i == shadowLightIndex) {
            shadow = ShadowCalculation(FragPosLightSpace, N, L);
        }

        float NdotL = max(dot(N, L), 0.0);
        Lo += (kD * albedo / PI + specular) * radiance * NdotL * (1.0 - shadow);
    }

    vec3 ambient = vec3(0.03) * albedo * ao;
    vec3 color = ambient + Lo + emissive;

    color = color / (color + vec3(1.0));
    color = pow(color, vec3(1.0 / 2.2));

    FragColor = vec4(color, albedoSample.a);
}
`

// DepthVertex renders geometry from the light's point of view.
const DepthVertex = `#version 410 core
layout (location = 0) in vec3 aPos;
layout (location = 2) in vec2 aTexCoord;

out vec2 TexCoord;

uniform mat4 lightSpaceMatrix;
uniform mat4 model;

void main() {
    TexCoord = aTexCoord;
    gl_Position = lightSpaceMatrix * model * vec4(aPos, 1.0);
}
`

// DepthFragment alpha-tests against the legacy diffuse texture so masked
// fragments cast no shadow.
const DepthFragment = `#version 410 core
in vec2 TexCoord;

uniform sampler2D diffuseTexture;

void main() {
    if (texture(diffuseTexture, TexCoord).a < 0.5) {
        discard;
    }
}
`

// UnlitVertex is the minimal MVP transform for light markers.
const UnlitVertex = `#version 410 core
layout (location = 0) in vec3 aPos;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;

void main() {
    gl_Position = projection * view * model * vec4(aPos, 1.0);
}
`

// UnlitFragment outputs a flat emissive color.
const UnlitFragment = `#version 410 core
out vec4 FragColor;

uniform vec3 emissiveColor;
uniform float intensity;

void main() {
    FragColor = vec4(emissiveColor * intensity, 1.0);
}
`
